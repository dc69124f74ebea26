// SPDX-License-Identifier: GPL-3.0-or-later
package relay

import (
	"os"
	"testing"

	"github.com/CrawX/go-nimbusrelay/log"
)

func TestMain(m *testing.M) {
	log.InitLogging("error")
	os.Exit(m.Run())
}
