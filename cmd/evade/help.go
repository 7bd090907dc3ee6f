package main

import (
	"fmt"

	"oss.terrastruct.com/evade/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `Usage:
  %s [--arena=300x300] [--no=96x44] [--yes=X,Y,WxH --avoid] [--attempts=5] [--seed=N]

%[1]s plays out a No button running away from the user. It centers No in the
arena, then moves it once per attempt and prints where it landed along with how
large the Yes button has grown.

Flags:
%s

See more docs at https://oss.terrastruct.com/evade
`, ms.Name, ms.Opts.Help())
}
