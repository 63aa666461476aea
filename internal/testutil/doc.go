// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// Template fixtures are embedded using go:embed and grouped in sets, one
// directory per set:
//
//	fixtures/basic/    base.ini dev.ini downloads.ini
//	fixtures/diamond/  a.ini -> b.ini, c.ini -> d.ini
//	fixtures/cycle/    x.ini <-> y.ini
//	fixtures/broken/   templates whose bodies are malformed
//	fixtures/nometa/   a template without a description
//
// Raw access and copying a set into a directory:
//
//	data, err := testutil.LoadFixture("basic/dev.ini")
//	err := testutil.CopyFixtureSet("diamond", dir)
//
// # Generated Templates
//
// TemplateSpec renders a template file from Go values, which keeps
// property tests free of string formatting:
//
//	testutil.WriteSpec(t, dir, "a.ini", testutil.TemplateSpec{
//	    Requires: []string{"b.ini"},
//	    Mappings: []testutil.Mapping{{Host: "<ROOT>\\a", Sandbox: "C:\\a"}},
//	})
//
// # Test Environment
//
// NewTestEnv builds a temporary template directory and defaults file and
// installs an app.App using them as app.Default for the duration of the
// test. Environment lookups during normalization only see TestEnv.Env.
package testutil
