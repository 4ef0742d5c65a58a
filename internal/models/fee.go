package models

import "time"

// DaysLate returns how many whole days past the due date a rental is on
// the given day. The due date is rentDate plus the contracted daysRented;
// returning on or before it yields zero.
func DaysLate(rentDate time.Time, daysRented int, today time.Time) int {
	due := DateOnly(rentDate).AddDate(0, 0, daysRented)
	late := int(DateOnly(today).Sub(due).Hours() / 24)
	if late < 0 {
		return 0
	}
	return late
}

// LateFee charges pricePerDay for every whole day past the due date.
func LateFee(rentDate time.Time, daysRented, pricePerDay int, today time.Time) int {
	return DaysLate(rentDate, daysRented, today) * pricePerDay
}
