package gen

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"
)

// DatePattern is the layout of the Created line.
const DatePattern = "2006-01-02"

// Header holds the values of the file header block.
type Header struct {
	Title       string
	Description string
	// Module names the generated file (<Module>.py).
	Module string
	// Created is rendered with DatePattern.
	Created time.Time
}

var headerTemplate = template.Must(template.New("header").Funcs(template.FuncMap{
	"comment": func(s string) string {
		return strings.ReplaceAll(s, "\n", "\n# ")
	},
	"date": func(t time.Time) string {
		return t.Format(DatePattern)
	},
}).Parse(`#!/usr/bin/env python
#-----------------------------------------------------------------------------
# Title      : {{comment .Title}}
#-----------------------------------------------------------------------------
# File       : {{.Module}}{{.Extension}}
# Created    : {{date .Created}}
#-----------------------------------------------------------------------------
# Description:
# {{comment .Description}}
#-----------------------------------------------------------------------------
# This file is part of the rogue software platform. It is subject to
# the license terms in the LICENSE.txt file found in the top-level directory
# of this distribution and at:
#    https://confluence.slac.stanford.edu/display/ppareg/LICENSE.html.
# No part of the rogue software platform, including this file, may be
# copied, modified, propagated, or distributed except according to the terms
# contained in the LICENSE.txt file.
#-----------------------------------------------------------------------------

import pyrogue as pr

`))

type headerData struct {
	Header
	Extension string
}

func writeHeader(w io.Writer, h Header, extension string) error {
	err := headerTemplate.Execute(w, headerData{Header: h, Extension: extension})
	if err != nil {
		return fmt.Errorf("failed to render header: %w", err)
	}

	return nil
}
