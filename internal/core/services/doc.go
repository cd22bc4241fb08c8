// Package services implements the driving port interfaces.
// Services contain the core business logic: the provider pattern table,
// support memoization, built-in and plugin provider registration, and the
// preview resolution façade.
//
// Services are pure Go with no CGO or external dependencies.
package services
