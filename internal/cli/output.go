package cli

import (
	"github.com/golang/glog"

	"github.com/timpalpant/go-dcfr"
	"github.com/timpalpant/go-dcfr/ldbstore"
)

// Output flags for exporting a finished strategy.
type Output struct {
	Save   string `help:"Write the average strategy to this file (gob)." type:"path"`
	SaveDB string `name:"save-db" help:"Write the average strategy to a LevelDB database in this directory." type:"path"`
}

// SaveStrategy writes strategy to every requested destination.
func (o *Output) SaveStrategy(strategy cfr.StrategyTable) {
	if o.Save != "" {
		if err := strategy.SaveFile(o.Save); err != nil {
			glog.Fatalf("Unable to save strategy: %v", err)
		}
		glog.Infof("Saved strategy to %s", o.Save)
	}

	if o.SaveDB != "" {
		store, err := ldbstore.Open(o.SaveDB, nil)
		if err != nil {
			glog.Fatal(err)
		}

		if err := store.WriteTable(strategy); err != nil {
			glog.Fatalf("Unable to save strategy: %v", err)
		}

		if err := store.Close(); err != nil {
			glog.Fatalf("Unable to close strategy store: %v", err)
		}
		glog.Infof("Saved strategy to %s", o.SaveDB)
	}
}
