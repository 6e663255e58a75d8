// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"stir/internal/config"
	"stir/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	cfg, err := config.Load(config.FileName)
	if err != nil {
		fmt.Println(err)
		cfg = config.Default()
	}
	commonlog.Configure(cfg.Verbosity, nil)

	fmt.Printf("Welcome to the STIR REPL, %s!\n", currentUser.Username)
	repl.Start(os.Stdin, os.Stdout, cfg.LoopTimeout)
}
