package wallet

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/goodnatureofminers/flightguard/internal/model"
)

// PromptApprover asks for a y/N answer on a text stream before every signature.
// Pass the same *bufio.Reader the caller reads commands from so buffered input is shared.
type PromptApprover struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

func NewPromptApprover(in io.Reader, out io.Writer) *PromptApprover {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &PromptApprover{in: br, out: out}
}

func (a *PromptApprover) ApproveTx(ctx context.Context, from common.Address, tx *types.Transaction) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	to := "new contract"
	if tx.To() != nil {
		to = tx.To().Hex()
	}
	fmt.Fprintf(a.out, "Confirm transaction\n  from:  %s\n  to:    %s\n  value: %s ETH\n  gas:   %d\nSign? [y/N]: ",
		from.Hex(), to, model.FormatEther(tx.Value()), tx.Gas())

	line, err := a.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
