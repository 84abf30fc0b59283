package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"quotedesk/go_backend/internal/domain/quote"
	"quotedesk/go_backend/internal/domain/quote/pdf"
	"quotedesk/go_backend/internal/domain/quote/pdf/gofpdf"
)

type nextIDCmd struct{}

func (*nextIDCmd) Name() string     { return "next-id" }
func (*nextIDCmd) Synopsis() string { return "print the sequence id the next saved quote will get" }
func (*nextIDCmd) Usage() string {
	return `quotectl next-id
`
}
func (*nextIDCmd) SetFlags(*flag.FlagSet) {}

func (*nextIDCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rt, _, err := open(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer rt.Close()

	fmt.Println(rt.Ctrl.Draft().NextSequenceID)
	return subcommands.ExitSuccess
}

type pingCmd struct{}

func (*pingCmd) Name() string     { return "ping" }
func (*pingCmd) Synopsis() string { return "probe the hosted database" }
func (*pingCmd) Usage() string {
	return `quotectl ping

  Exits non-zero when the hosted database is unreachable or not configured.
`
}
func (*pingCmd) SetFlags(*flag.FlagSet) {}

func (*pingCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rt, _, err := open(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer rt.Close()

	if !rt.Ctrl.ConnectionStatus(ctx) {
		fmt.Println("offline")
		return subcommands.ExitFailure
	}
	fmt.Println("online")
	return subcommands.ExitSuccess
}

type pullCatalogCmd struct{}

func (*pullCatalogCmd) Name() string     { return "pull-catalog" }
func (*pullCatalogCmd) Synopsis() string { return "replace the local catalog with the hosted inventory" }
func (*pullCatalogCmd) Usage() string {
	return `quotectl pull-catalog

  The local catalog is kept when the fetch fails or returns no items.
`
}
func (*pullCatalogCmd) SetFlags(*flag.FlagSet) {}

func (*pullCatalogCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rt, _, err := open(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer rt.Close()

	n, ok, err := rt.Ctrl.PullCatalog(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "remote catalog unavailable, local catalog kept")
		return subcommands.ExitFailure
	}
	fmt.Printf("%d items\n", n)
	return subcommands.ExitSuccess
}

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a saved quote as PDF" }
func (*exportCmd) Usage() string {
	return `quotectl export -o <file> <sequence_id>
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file. Defaults to quote-<sequence_id>.pdf in the current directory.")
}

func (p *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, p.Usage())
		return subcommands.ExitUsageError
	}
	seq := f.Arg(0)

	rt, cfg, err := open(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer rt.Close()

	q, found := findBySequence(rt.Ctrl.History(), seq)
	if !found {
		fmt.Fprintf(os.Stderr, "no quote with sequence id %s\n", seq)
		return subcommands.ExitFailure
	}

	b, err := gofpdf.New(cfg.Issuer).Generate(q)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	out := p.output
	if out == "" {
		out = pdf.Filename(q)
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(out)
	return subcommands.ExitSuccess
}

func findBySequence(history []quote.Quote, seq string) (quote.Quote, bool) {
	for _, q := range history {
		if q.SequenceID == seq {
			return q, true
		}
	}
	return quote.Quote{}, false
}
