package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"resource_catalog/internal/service"
	"resource_catalog/internal/transport"
)

func stageProgress(w io.Writer) service.ProgressFunc {
	return func(stage string, total, completed int) {
		fmt.Fprintf(w, "\r%-10s %s/%s", stage, humanize.Comma(int64(completed)), humanize.Comma(int64(total)))
	}
}

func byteProgress(w io.Writer, label string) transport.ProgressFunc {
	return func(total, completed int64) {
		fmt.Fprintf(w, "\r%s %s", label, formatTransfer(total, completed))
	}
}

func formatTransfer(total, completed int64) string {
	if total < 0 {
		return humanize.Bytes(uint64(completed))
	}
	return fmt.Sprintf("%s / %s", humanize.Bytes(uint64(completed)), humanize.Bytes(uint64(total)))
}
