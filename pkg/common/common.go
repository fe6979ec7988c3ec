package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// SetNode replaces the snowflake node used for id generation.
// Node numbers range from 0 to 1023.
func SetNode(n int64) error {
	nd, err := snowflake.NewNode(n)
	if err != nil {
		return err
	}
	nodeOnce.Do(func() {})
	node = nd
	return nil
}

func defaultNode() *snowflake.Node {
	nodeOnce.Do(func() {
		node, _ = snowflake.NewNode(1)
	})
	return node
}

// UUID returns a fresh snowflake id in its decimal string form.
func UUID() string {
	return defaultNode().Generate().String()
}

const receiptPrefix = "RCP-"

// ReceiptNumber formats a display code for a receipt, e.g. RCP-042.
func ReceiptNumber(seq int) string {
	return fmt.Sprintf("%s%03d", receiptPrefix, seq)
}

// ParseReceiptNumber returns the sequence of a RCP-<n> display code.
func ParseReceiptNumber(s string) (int, bool) {
	if !strings.HasPrefix(s, receiptPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(s[len(receiptPrefix):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// NextReceiptNumber returns a display code above every RCP-<n> in existing
// and never below count+1.
func NextReceiptNumber(existing []string) string {
	seq := len(existing) + 1
	for _, s := range existing {
		if n, ok := ParseReceiptNumber(s); ok && n >= seq {
			seq = n + 1
		}
	}
	return ReceiptNumber(seq)
}

// Round2 rounds a money amount to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
