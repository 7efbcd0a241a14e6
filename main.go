// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	"github.com/stratusline/ledger-service/cmd"
)

func main() {
	cmd.Execute()
}
