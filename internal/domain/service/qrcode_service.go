package service

// QRCodeService renders customer QR cards.
type QRCodeService interface {
	// GenerateCustomerQR encodes a customer's QR token as a PNG image.
	GenerateCustomerQR(qrToken string) ([]byte, error)
}

// QRTokenGenerator issues new customer QR tokens. Uniqueness is enforced by the store.
type QRTokenGenerator interface {
	NewToken() (string, error)
}
