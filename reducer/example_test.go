package reducer_test

import (
	"fmt"

	"github.com/uniedit/reduxkit/constants"
	"github.com/uniedit/reduxkit/diagnostics"
	"github.com/uniedit/reduxkit/reducer"
)

type Crew struct {
	Ship    string
	Captain string
}

func ExampleNew() {
	actions := constants.Create("SET_CAPTAIN", "RENAME_SHIP")

	r := reducer.New(Crew{Ship: "Millennium Falcon"}, reducer.Config[Crew, string]{
		Name: "crew",
		Handlers: reducer.Table(
			reducer.Bind("onSetCaptain", actions["SET_CAPTAIN"]),
			reducer.Bind("onRenameShip", actions["RENAME_SHIP"]),
		),
		Funcs: map[string]reducer.HandlerFunc[Crew, string]{
			"onSetCaptain": reducer.Always(func(c Crew, name string) Crew {
				c.Captain = name
				return c
			}),
			"onRenameShip": reducer.Always(func(c Crew, name string) Crew {
				c.Ship = name
				return c
			}),
		},
		Sink: diagnostics.Nop,
	})

	s := r.Reduce(nil, reducer.NewAction(actions["SET_CAPTAIN"], "Han Solo"))
	s = r.Dispatch(s, reducer.NewAction("SOME_FAKE_ACTION", "ignored"))
	fmt.Printf("%s flies the %s\n", s.Captain, s.Ship)
	// Output: Han Solo flies the Millennium Falcon
}
