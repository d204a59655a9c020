package core

const maskPrefix = "XXXX-XXXX-XXXX-"

// MaskCard derives the display-safe representation of a card number,
// revealing only the last four digits. The format is fixed regardless of
// the true card length or network.
//
// Validation guarantees card numbers of at least 12 digits, but masking is
// a separate step, so inputs shorter than 4 are fully masked instead of
// slicing out of range.
func MaskCard(cardNumber string) string {
	if len(cardNumber) < 4 {
		return maskPrefix + "****"
	}
	return maskPrefix + cardNumber[len(cardNumber)-4:]
}
