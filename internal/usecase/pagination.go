package usecase

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Page is an offset pagination window.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the window to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	return p
}
