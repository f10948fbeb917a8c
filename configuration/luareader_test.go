// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/legacytx/configuration"
	"github.com/bitmark-inc/legacytx/fault"
)

type nestedType struct {
	Address string `gluamapper:"address"`
	Values  []int  `gluamapper:"values"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Name          string            `gluamapper:"name"`
	Count         int               `gluamapper:"count"`
	Enabled       bool              `gluamapper:"enabled"`
	Nested        nestedType        `gluamapper:"nested"`
	Levels        map[string]string `gluamapper:"levels"`
	Self          string            `gluamapper:"self"`
	Untouched     string            `gluamapper:"untouched"`
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := "testdata/test.conf"
	config := &testConfiguration{
		Untouched: "default value",
	}

	err := configuration.ParseConfigurationFile(fileName, config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, ".", config.DataDirectory, "data directory")
	assert.Equal(t, "legacytx", config.Name, "name")
	assert.Equal(t, 42, config.Count, "count")
	assert.True(t, config.Enabled, "enabled")
	assert.Equal(t, "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", config.Nested.Address, "nested address")
	assert.Equal(t, []int{1, 2, 3}, config.Nested.Values, "nested values")
	assert.Equal(t, "info", config.Levels["main"], "main level")
	assert.Equal(t, "critical", config.Levels["DEFAULT"], "default level")
	assert.Equal(t, fileName, config.Self, "arg[0]")
	assert.Equal(t, "default value", config.Untouched, "default was overwritten")
}

func TestParseConfigurationFileNotPointer(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile("testdata/test.conf", config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "value accepted")

	var nilConfig *testConfiguration
	err = configuration.ParseConfigurationFile("testdata/test.conf", nilConfig)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "nil pointer accepted")

	n := 0
	err = configuration.ParseConfigurationFile("testdata/test.conf", &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "pointer to int accepted")
}

func TestParseConfigurationFileNotTable(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile("testdata/not-table.conf", config)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "wrong error")
}

func TestParseConfigurationFileBroken(t *testing.T) {
	config := &testConfiguration{}

	err := configuration.ParseConfigurationFile("testdata/broken.conf", config)
	assert.NotNil(t, err, "syntax error accepted")

	err = configuration.ParseConfigurationFile("testdata/missing.conf", config)
	assert.NotNil(t, err, "missing file accepted")
}
