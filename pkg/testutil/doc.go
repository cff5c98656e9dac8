// Package testutil provides utilities for testing pkghooks components.
//
// Key components:
//   - FakeIO: scripted types.IO that records messages and questions
//   - MockIO: testify mock of types.IO for expectation-style tests
//   - MemFS helpers: seed and inspect an afero memory filesystem
package testutil
