package billing

import (
	"fmt"
	"sync"
	"time"
)

var (
	numberMu   sync.Mutex
	lastNumber int64
)

// nextInvoiceNumber derives a unique invoice number from the creation
// timestamp. The guarded bump keeps numbers strictly increasing even when two
// invoices are created within the same nanosecond.
func nextInvoiceNumber() string {
	numberMu.Lock()
	defer numberMu.Unlock()

	n := time.Now().UnixNano()
	if n <= lastNumber {
		n = lastNumber + 1
	}
	lastNumber = n
	return fmt.Sprintf("INV-%d", n)
}
