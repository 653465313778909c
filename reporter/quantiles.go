package reporter

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/solrlab/solrqstat/metrics"
)

// WriteQuantiles writes a one-line quantile summary of all retained QTime
// samples next to the main report.
func WriteQuantiles(path string, s *metrics.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	w := csv.NewWriter(bw)
	w.Write([]string{"ts", "count", "p50", "p90", "p99", "p999"})
	q := s.Quantile(0.5, 0.9, 0.99, 0.999)
	w.Write([]string{
		strconv.FormatInt(time.Now().Unix(), 10),
		strconv.Itoa(s.Count()),
		fmt.Sprintf("%.2f", q[0]),
		fmt.Sprintf("%.2f", q[1]),
		fmt.Sprintf("%.2f", q[2]),
		fmt.Sprintf("%.2f", q[3]),
	})
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return bw.Flush()
}
