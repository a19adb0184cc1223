package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateRedemptionQR renders the pickup QR code for a redemption code as PNG.
	GenerateRedemptionQR(code string) ([]byte, error)

	// ParseRedemptionQR extracts the redemption code from scanned QR data.
	ParseRedemptionQR(qrData string) (string, error)
}
