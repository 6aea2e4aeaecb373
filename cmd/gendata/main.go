// gendata writes a random transactions CSV for local testing and
// benchmarking of the payments engine.
package main

import (
	"encoding/csv"
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/shopspring/decimal"

	"github.com/punchamoorthee/paymentsengine/internal/csvio"
)

var (
	rows    int
	clients int
	outPath string
	seed    int64
)

func init() {
	flag.IntVar(&rows, "rows", 10000, "Number of transaction rows to generate")
	flag.IntVar(&clients, "clients", 100, "Number of distinct clients")
	flag.StringVar(&outPath, "out", "transactions.csv", "Output file path")
	flag.Int64Var(&seed, "seed", 1, "PRNG seed, for reproducible files")
}

// deposit remembers an emitted deposit so later rows can dispute it.
type deposit struct {
	client uint16
	tx     uint32
}

func main() {
	flag.Parse()

	file, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Unable to create output file: %v", err)
	}
	defer file.Close()

	rng := rand.New(rand.NewSource(seed))
	writer := csv.NewWriter(file)
	encoder := csvutil.NewEncoder(writer)

	var deposits []deposit
	nextTx := uint32(1)

	log.Printf("Generating %d rows across %d clients...", rows, clients)
	for i := 0; i < rows; i++ {
		row := nextRow(rng, &deposits, &nextTx)
		if err := encoder.Encode(row); err != nil {
			log.Fatalf("Encode failed: %v", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Fatalf("Flush failed: %v", err)
	}
	log.Printf("Wrote %d rows to %s", rows, outPath)
}

// nextRow picks a transaction with a deposit-heavy mix: 70% deposits, 20%
// withdrawals, and 10% dispute-lifecycle rows against earlier deposits.
func nextRow(rng *rand.Rand, deposits *[]deposit, nextTx *uint32) csvio.Row {
	client := uint16(rng.Intn(clients) + 1)
	roll := rng.Float64()

	switch {
	case roll < 0.70 || len(*deposits) == 0:
		row := csvio.Row{
			Type:   "deposit",
			Client: client,
			Tx:     *nextTx,
			Amount: randomAmount(rng),
		}
		*deposits = append(*deposits, deposit{client: client, tx: *nextTx})
		*nextTx++
		return row

	case roll < 0.90:
		row := csvio.Row{
			Type:   "withdrawal",
			Client: client,
			Tx:     *nextTx,
			Amount: randomAmount(rng),
		}
		*nextTx++
		return row

	default:
		target := (*deposits)[rng.Intn(len(*deposits))]
		refType := "dispute"
		if r := rng.Float64(); r < 0.30 {
			refType = "resolve"
		} else if r < 0.40 {
			refType = "chargeback"
		}
		return csvio.Row{
			Type:   refType,
			Client: target.client,
			Tx:     target.tx,
		}
	}
}

// randomAmount returns a value between 0.01 and 10000.00 with two
// fractional digits.
func randomAmount(rng *rand.Rand) string {
	cents := int64(rng.Intn(1_000_000) + 1)
	return decimal.New(cents, -2).StringFixed(2)
}
