package models

import "errors"

// ErrInvalidCorrectOption is returned whenever a payload or CSV row names a
// correct option outside the four available choices.
var ErrInvalidCorrectOption = errors.New("correct option must be between 1 and 4")

type Question struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Question      string `json:"question" gorm:"not null"`
	Option1       string `json:"option_1" gorm:"column:option_1;not null"`
	Option2       string `json:"option_2" gorm:"column:option_2;not null"`
	Option3       string `json:"option_3" gorm:"column:option_3;not null"`
	Option4       string `json:"option_4" gorm:"column:option_4;not null"`
	CorrectOption int    `json:"correct_option" gorm:"not null"`
}

// ValidCorrectOption reports whether v names one of the four options. The
// option count is fixed at four, so this is a membership test rather than a
// range check against whatever options the payload carries.
func ValidCorrectOption(v int) bool {
	switch v {
	case 1, 2, 3, 4:
		return true
	}
	return false
}
