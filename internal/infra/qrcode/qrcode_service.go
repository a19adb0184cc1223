package qrcode

import (
	"regexp"
	"strings"

	"clubefast/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// RedemptionURIPrefix prefixes the redemption code inside pickup QR codes.
const RedemptionURIPrefix = "clubefast://resgate/"

const defaultSize = 256

var (
	ErrEmptyQRData       = errors.New("empty QR code data")
	ErrInvalidQRPayload  = errors.New("QR code is not a redemption code")
	redemptionCodeFormat = regexp.MustCompile(`^CF-[0-9A-F]{10}$`)
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateRedemptionQR renders clubefast://resgate/<code> as a PNG.
func (s *qrcodeService) GenerateRedemptionQR(code string) ([]byte, error) {
	code = strings.TrimSpace(code)
	if !redemptionCodeFormat.MatchString(code) {
		return nil, errors.Wrapf(ErrInvalidQRPayload, "code %q", code)
	}

	qrCode, err := qrcode.New(RedemptionURIPrefix+code, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseRedemptionQR accepts the QR URI as well as a bare code typed at the counter.
func (s *qrcodeService) ParseRedemptionQR(qrData string) (string, error) {
	data := strings.TrimSpace(qrData)
	if data == "" {
		return "", ErrEmptyQRData
	}

	code := strings.ToUpper(strings.TrimPrefix(data, RedemptionURIPrefix))
	if !redemptionCodeFormat.MatchString(code) {
		return "", errors.Wrapf(ErrInvalidQRPayload, "payload %q", data)
	}

	return code, nil
}
