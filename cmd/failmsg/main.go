// Command failmsg prints the diagnostic a failed assertion would
// produce for operands given as literals.
//
// Usage:
//
//	failmsg binary --op == --left 5 --right 6      # 5 != 6
//	failmsg binary --op '<' --left 1 --left 2 --right 3
//	failmsg unary --op '!' false                   # false == true
//	failmsg invert '<='                            # >
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
