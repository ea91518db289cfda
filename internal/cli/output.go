package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/aalvaropc/numutil/internal/domain"
)

const (
	formatPlain  = "plain"
	formatJSON   = "json"
	formatPretty = "pretty"
)

func checkFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return &domain.OpError{
		Op:   "cli.format",
		Kind: domain.KindInvalidArgument,
		Err:  fmt.Errorf("unsupported format %q (expected %v): %w", format, allowed, domain.ErrInvalidArgument),
	}
}

type evaluationJSON struct {
	ID       string `json:"id,omitempty"`
	Function string `json:"function"`
	N        int    `json:"n"`
	Value    string `json:"value"`
	Digits   int    `json:"digits"`
}

func toEvaluationJSON(ev domain.Evaluation) evaluationJSON {
	out := evaluationJSON{
		ID:       ev.ID,
		Function: string(ev.Function),
		N:        ev.N,
		Digits:   ev.Digits(),
	}
	if ev.Value != nil {
		out.Value = ev.Value.String()
	}
	return out
}

func printEvaluation(w io.Writer, ev domain.Evaluation, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toEvaluationJSON(ev))
	case formatPlain, "":
		_, err := fmt.Fprintln(w, ev.Value.String())
		return err
	default:
		return checkFormat(format, formatPlain, formatJSON)
	}
}

func printTable(w io.Writer, tbl domain.Table, format string) error {
	switch format {
	case formatJSON:
		type rowJSON struct {
			N     int    `json:"n"`
			Value string `json:"value"`
		}
		payload := struct {
			Function string    `json:"function"`
			From     int       `json:"from"`
			To       int       `json:"to"`
			Rows     []rowJSON `json:"rows"`
		}{
			Function: string(tbl.Function),
			From:     tbl.From,
			To:       tbl.To,
			Rows:     make([]rowJSON, 0, len(tbl.Rows)),
		}
		for _, r := range tbl.Rows {
			payload.Rows = append(payload.Rows, rowJSON{N: r.N, Value: r.Value.String()})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case formatPlain:
		for _, r := range tbl.Rows {
			if _, err := fmt.Fprintf(w, "%d %s\n", r.N, r.Value); err != nil {
				return err
			}
		}
		return nil
	case formatPretty, "":
		printPrettyTable(w, tbl, defaultTheme())
		return nil
	default:
		return checkFormat(format, formatPretty, formatPlain, formatJSON)
	}
}

func printPrettyTable(w io.Writer, tbl domain.Table, th theme) {
	nWidth, vWidth := 1, len(string(tbl.Function))+3
	for _, r := range tbl.Rows {
		nWidth = max(nWidth, len(strconv.Itoa(r.N)))
		vWidth = max(vWidth, len(r.Value.String()))
	}

	idx := th.Index.Width(nWidth)
	val := th.Value.Width(vWidth)

	fmt.Fprintln(w, th.Title.Render(fmt.Sprintf("%s over [%d, %d]", tbl.Function, tbl.From, tbl.To)))
	fmt.Fprintf(w, "%s  %s\n",
		th.Header.Width(nWidth).Align(idx.GetAlign()).Render("n"),
		th.Header.Width(vWidth).Align(val.GetAlign()).Render(string(tbl.Function)+"(n)"),
	)
	for _, r := range tbl.Rows {
		fmt.Fprintf(w, "%s  %s\n", idx.Render(strconv.Itoa(r.N)), val.Render(r.Value.String()))
	}

	elapsed := tbl.EndedAt.Sub(tbl.StartedAt)
	if tbl.StartedAt.IsZero() || tbl.EndedAt.IsZero() {
		elapsed = 0
	}
	fmt.Fprintln(w, th.Footer.Render(fmt.Sprintf("%d row(s) in %s", len(tbl.Rows), elapsed)))
}

func printVerification(w io.Writer, v domain.Verification, verbose bool) {
	for _, c := range v.Checks {
		if c.Passed && !verbose {
			continue
		}
		mark := "✓"
		if !c.Passed {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s %s — %s\n", mark, c.Name, c.Message)
	}

	if len(v.Failed()) == 0 {
		fmt.Fprintln(w, "OK")
	}
}
