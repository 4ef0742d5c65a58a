package errors

import "fmt"

// ErrInvalidInput is the base for every rejection of malformed or
// out-of-range input; callers wrap it with the specific reason.
var ErrInvalidInput = fmt.Errorf("invalid input")

var ErrCategoryNameTaken = fmt.Errorf("category name already in use")
var ErrCategoryNotFound = fmt.Errorf("category not found")

var ErrGameNameTaken = fmt.Errorf("game name already in use")
var ErrGameNotFound = fmt.Errorf("game not found")
var ErrGameOutOfStock = fmt.Errorf("all copies of this game are rented out")

var ErrCustomerNotFound = fmt.Errorf("customer not found")
var ErrCPFTaken = fmt.Errorf("cpf already registered")

// ErrRentalNotFound also covers rentals that were already returned: a
// closed rental cannot be returned again and is reported as absent.
var ErrRentalNotFound = fmt.Errorf("rental not found")
