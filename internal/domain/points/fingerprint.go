package points

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Fingerprint identifies an invoice submission by its logical content only,
// so the same invoice sent twice by the same customer yields the same value.
// A fallback date is left out because it depends on the submission day.
func Fingerprint(customerID uuid.UUID, r *Result) string {
	date := r.Date
	if r.DateFallback {
		date = ""
	}

	lines := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, fmt.Sprintf("%s|%s|%d",
			normalizeCode(item.Code),
			strings.Join(strings.Fields(strings.ToUpper(item.Description)), " "),
			toCents(item.Total),
		))
	}
	sort.Strings(lines)

	h := sha256.New()
	fmt.Fprintf(h, "%s\n%s\n%s\n%d\n",
		customerID,
		strings.ToUpper(strings.TrimSpace(r.OrderNumber)),
		date,
		toCents(r.DeclaredTotal),
	)
	for _, line := range lines {
		fmt.Fprintln(h, line)
	}

	return hex.EncodeToString(h.Sum(nil))
}
