package apply

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/elC0mpa/gcs-doctor/model"
)

// AutoApprover approves every recommendation without prompting
type AutoApprover struct{}

// Approve implements service.Approver
func (AutoApprover) Approve(bucket string, recommendation model.Recommendation) bool {
	return true
}

// PromptApprover asks for per-item confirmation on the terminal
type PromptApprover struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPromptApprover(in io.Reader, out io.Writer) *PromptApprover {
	return &PromptApprover{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Approve implements service.Approver
// Anything other than y/Y declines
func (p *PromptApprover) Approve(bucket string, recommendation model.Recommendation) bool {
	fmt.Fprint(p.out, "    Apply this recommendation? (y/n): ")
	if !p.scanner.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(p.scanner.Text()), "y")
}
