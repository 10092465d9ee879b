package parser_test

import (
	"testing"

	"github.com/brimdata/zfront/ztest"
)

func TestZTest(t *testing.T) { ztest.Run(t, "ztests") }
