/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main is the relying-party event listener. It initiates a credential offer, a self-issued
// identity request and a presentation request against a delegated issuance and verification service,
// then reacts to the completion events that service delivers to its callback endpoint.
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vcs-event-listener/cmd/event-listener/startcmd"
)

var logger = log.New("event-listener")
var Version string // will be embeded during build

func main() {
	rootCmd := &cobra.Command{
		Use: "event-listener",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(
		startcmd.WithVersion(Version),
	))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run event-listener", log.WithError(err))
	}
}
