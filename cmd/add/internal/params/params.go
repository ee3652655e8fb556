package params

import (
	"github.com/spf13/cobra"
)

// AddParams holds the route given to the add command. Any text is accepted for
// the endpoints, the empty string included.
type AddParams struct {
	start  string
	end    string
	number int
}

func NewAddParams(start, end string, number int) *AddParams {
	return &AddParams{
		start:  start,
		end:    end,
		number: number,
	}
}

// NewAddParamsWithCobraBindings registers the add flags on cmd and returns the params they fill.
func NewAddParamsWithCobraBindings(cmd *cobra.Command) *AddParams {
	a := &AddParams{}
	fl := cmd.Flags()

	fl.StringVarP(&a.start, "start", "s", "", "The route start")
	fl.StringVarP(&a.end, "end", "e", "", "The route endpoint")
	fl.IntVarP(&a.number, "number", "n", 0, "The number of route")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("number")
	return a
}

func (a *AddParams) Start() string {
	return a.start
}

func (a *AddParams) End() string {
	return a.end
}

func (a *AddParams) Number() int {
	return a.number
}
