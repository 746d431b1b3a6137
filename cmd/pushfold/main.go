// Solve heads-up push/fold hold'em with Discounted CFR and print the
// pushing and calling ranges.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/golang/glog"

	"github.com/timpalpant/go-dcfr"
	"github.com/timpalpant/go-dcfr/equity"
	"github.com/timpalpant/go-dcfr/internal/cli"
	"github.com/timpalpant/go-dcfr/pushfold"
)

type CLI struct {
	cli.Common

	Table      string  `help:"Heads-up preflop equity table (.bin, .bin.zst or .bin.gz)." default:"static/headsup_preflop_equity.bin" env:"EQUITY_TABLE" type:"path"`
	Verify     bool    `help:"Check the equity table's invariants after loading." default:"true" negatable:""`
	Stack      float64 `help:"Effective stack in big blinds." default:"10"`
	Iterations int     `short:"n" help:"Number of DCFR iterations." default:"1000"`
	cli.Output
}

func main() {
	var c CLI
	kong.Parse(&c, kong.Description("Solve heads-up push/fold hold'em with Discounted CFR."))
	c.Setup()

	table, err := equity.NewLoader(c.Table, c.Verify).Get()
	if err != nil {
		glog.Fatalf("Unable to load equity table: %v", err)
	}

	game := pushfold.New(table, c.Stack)
	start := time.Now()
	glog.Infof("Running %d iterations with effective stack %vbb", c.Iterations, c.Stack)
	strategy := cfr.New[pushfold.Node](game, cfr.DefaultDiscountParams()).Compute(c.Iterations)
	glog.Infof("Finished in %v", time.Since(start))

	c.SaveStrategy(strategy)

	ev := cfr.ExpectedValue[pushfold.Node](game, 0, strategy)
	exploitability := cfr.Exploitability[pushfold.Node](game, strategy)

	fmt.Println()
	fmt.Println(cli.TitleStyle.Render(
		fmt.Sprintf("[Heads-up Push/Fold Hold'em] (effective stack = %v[bb])", c.Stack)))
	cli.Field("Exploitability", "%+.3e[bb]", exploitability)

	push := pushfold.ActionChart(strategy, pushfold.PusherHistory, pushfold.Push)
	fmt.Println()
	fmt.Println(cli.SectionStyle.Render("[Pusher (Small blind)]"))
	cli.Field("EV", "%+.4f[bb]", ev)
	cli.Field("Overall push rate", "%.2f%%", 100*push.Overall())
	printChart(push)

	call := pushfold.ActionChart(strategy, pushfold.CallerHistory, pushfold.Push)
	fmt.Println()
	fmt.Println(cli.SectionStyle.Render("[Caller (Big blind)]"))
	cli.Field("EV", "%+.4f[bb]", -ev)
	cli.Field("Overall call rate", "%.2f%%", 100*call.Overall())
	printChart(call)
}

func printChart(chart *pushfold.Chart) {
	var header strings.Builder
	header.WriteString(" |")
	for col := equity.Ace; col >= equity.Two; col-- {
		fmt.Fprintf(&header, "   %v  ", col)
	}
	fmt.Println(cli.LabelStyle.Render(strings.TrimRight(header.String(), " ")))
	fmt.Println(cli.LabelStyle.Render("-+" + strings.Repeat("-", 6*13)))

	for row := equity.Ace; row >= equity.Two; row-- {
		var line strings.Builder
		line.WriteString(cli.LabelStyle.Render(row.String() + "|"))
		for col := equity.Ace; col >= equity.Two; col-- {
			p := chart.Get(pushfold.Cell(row, col))
			line.WriteString(cli.FrequencyStyle(p).Render(pushfold.FormatFrequency(p)))
		}
		fmt.Println(line.String())
	}
}
