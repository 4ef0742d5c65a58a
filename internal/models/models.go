package models

// DB models
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Game struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	StockTotal  int    `json:"stockTotal"`
	CategoryID  int    `json:"categoryId"`
	PricePerDay int    `json:"pricePerDay"`
}

// GameWithCategory is the listing shape: a game plus its category's name.
type GameWithCategory struct {
	Game
	CategoryName string `json:"categoryName"`
}

type Customer struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	CPF      string `json:"cpf"`
	Birthday Date   `json:"birthday"`
}

// Rental is open while ReturnDate is nil; DelayFee is set on close.
type Rental struct {
	ID            int   `json:"id"`
	CustomerID    int   `json:"customerId"`
	GameID        int   `json:"gameId"`
	RentDate      Date  `json:"rentDate"`
	DaysRented    int   `json:"daysRented"`
	ReturnDate    *Date `json:"returnDate"`
	OriginalPrice int   `json:"originalPrice"`
	DelayFee      *int  `json:"delayFee"`
}

type RentalCustomer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type RentalGame struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

type RentalWithDetails struct {
	Rental
	Customer RentalCustomer `json:"customer"`
	Game     RentalGame     `json:"game"`
}

// request models
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateGameRequest struct {
	Name        string `json:"name" validate:"required"`
	Image       string `json:"image" validate:"omitempty,url"`
	StockTotal  int    `json:"stockTotal" validate:"required,gt=0"`
	CategoryID  int    `json:"categoryId" validate:"required,gt=0"`
	PricePerDay int    `json:"pricePerDay" validate:"required,gt=0"`
}

// CustomerRequest is shared by the create and update endpoints.
type CustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	CPF      string `json:"cpf" validate:"required"`
	Birthday string `json:"birthday" validate:"required"`
}

type CreateRentalRequest struct {
	CustomerID int `json:"customerId" validate:"required,gt=0"`
	GameID     int `json:"gameId" validate:"required,gt=0"`
	DaysRented int `json:"daysRented" validate:"required,gt=0"`
}
