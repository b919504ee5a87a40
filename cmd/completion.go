package cmd

import (
	"flag"

	"github.com/etnz/holdings/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of etfa: its global flags, its
// subcommands and their flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: make(map[string]complete.Predictor),
	}
	flag.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = globalPredictor(f.Name)
	})

	for _, c := range commands {
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) {
			switch f.Name {
			case "sort":
				sub.Flags[f.Name] = predict.Set{"symbol", "count"}
			default:
				sub.Flags[f.Name] = predict.Files("*")
			}
		})
		switch c.Name() {
		case "compare", "correlation", "exposure":
			sub.Args = predict.Something
		}
		root.Sub[c.Name()] = sub
	}

	topics, _ := docs.All()
	root.Sub["topic"] = &complete.Command{Args: predict.Set(append(topics, "*"))}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

func globalPredictor(name string) complete.Predictor {
	switch name {
	case "d":
		return predict.Dirs("*")
	case "i", "config":
		return predict.Files("*")
	case "v", "force":
		return predict.Nothing
	default:
		return predict.Something
	}
}
