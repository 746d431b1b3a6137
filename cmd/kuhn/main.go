// Solve Kuhn poker with Discounted CFR and print the equilibrium strategy.
package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/golang/glog"

	"github.com/timpalpant/go-dcfr"
	"github.com/timpalpant/go-dcfr/internal/cli"
	"github.com/timpalpant/go-dcfr/kuhn"
)

type CLI struct {
	cli.Common

	Iterations int `short:"n" help:"Number of DCFR iterations." default:"10000"`
	cli.Output
}

func main() {
	var c CLI
	kong.Parse(&c, kong.Description("Solve Kuhn poker with Discounted CFR."))
	c.Setup()

	game := kuhn.NewGame()
	start := time.Now()
	glog.Infof("Running %d iterations", c.Iterations)
	strategy := cfr.New[kuhn.Node](game, cfr.DefaultDiscountParams()).Compute(c.Iterations)
	glog.Infof("Finished in %v", time.Since(start))

	c.SaveStrategy(strategy)

	ev := cfr.ExpectedValue[kuhn.Node](game, 0, strategy)
	exploitability := cfr.Exploitability[kuhn.Node](game, strategy)

	fmt.Println()
	fmt.Println(cli.TitleStyle.Render("[Kuhn Poker]"))
	cli.Field("Exploitability", "%+.3e", exploitability)

	report := func(title string, ev float64, rows []row) {
		fmt.Println()
		fmt.Println(cli.SectionStyle.Render(title))
		cli.Field("EV", "%+.4f", ev)
		for _, r := range rows {
			fmt.Printf("- %s%% %s\n", r.action, r.desc)
			probs := strategy.Get(r.history)[kuhn.Bet]
			for card := kuhn.King; card >= kuhn.Jack; card-- {
				p := probs[card]
				fmt.Printf("    %v: %s\n", card, cli.FrequencyStyle(p).Render(fmt.Sprintf("%.2f%%", 100*p)))
			}
		}
	}

	report("[First player]", ev, []row{
		{cfr.NewHistory(), "", "Bet"},
		{cfr.NewHistory(kuhn.Check, kuhn.Bet), "(Check => Bet => ?)", "Call"},
	})
	report("[Second player]", -ev, []row{
		{cfr.NewHistory(kuhn.Check), "(Check => ?)", "Bet"},
		{cfr.NewHistory(kuhn.Bet), "(Bet => ?)", "Call"},
	})
}

type row struct {
	history cfr.History
	desc    string
	action  string
}
