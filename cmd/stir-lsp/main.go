// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"stir/internal/config"
	"stir/internal/lsp"
)

const lsName = "stir" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cfg = config.Default()
	}

	// stdout carries the protocol, so logs go to the configured file or stderr
	commonlog.Configure(cfg.Verbosity, logPath(cfg))
	log := commonlog.GetLogger("stir.lsp")

	stirHandler := lsp.NewStirHandler()

	handler = protocol.Handler{
		Initialize:                     stirHandler.Initialize,
		Initialized:                    stirHandler.Initialized,
		Shutdown:                       stirHandler.Shutdown,
		SetTrace:                       stirHandler.SetTrace,
		TextDocumentDidOpen:            stirHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           stirHandler.TextDocumentDidClose,
		TextDocumentDidChange:          stirHandler.TextDocumentDidChange,
		TextDocumentCompletion:         stirHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: stirHandler.TextDocumentSemanticTokensFull,
	}

	// - handler: the protocol handler struct
	// - name: the language server name (shown to clients)
	// - debug: whether to enable internal GLSP debug logs
	s := server.NewServer(&handler, lsName, false)

	log.Notice("starting language server", "name", lsName, "version", version)

	if err := s.RunStdio(); err != nil {
		log.Error("language server stopped", "error", err)
		os.Exit(1)
	}
}

func logPath(cfg *config.Config) *string {
	if cfg.LogPath == "" {
		return nil
	}
	return &cfg.LogPath
}
