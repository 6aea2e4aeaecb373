package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/punchamoorthee/paymentsengine/internal/engine"
)

// accountRecord is the output shape for one client. Balances are fixed to
// 4 fractional digits.
type accountRecord struct {
	Client    uint16 `csv:"client"`
	Available string `csv:"available"`
	Held      string `csv:"held"`
	Total     string `csv:"total"`
	Locked    bool   `csv:"locked"`
}

// WriteAccounts serializes every account the engine knows about, one row
// per client. Row order follows map iteration and is not significant.
func WriteAccounts(output io.Writer, eng *engine.Engine) error {
	writer := csv.NewWriter(output)
	encoder := csvutil.NewEncoder(writer)

	for id, account := range eng.Accounts() {
		record := accountRecord{
			Client:    uint16(id),
			Available: account.Available.StringFixed(4),
			Held:      account.Held.StringFixed(4),
			Total:     account.Total().StringFixed(4),
			Locked:    account.Locked,
		}
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("encode account %d: %w", id, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
