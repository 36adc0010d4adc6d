// Package mocks provides mock implementations of the web tier's ports for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the interfaces in internal/ports.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	source := mocks.NewMockAuthStatusSource(ctrl)
//	source.EXPECT().CurrentUser(gomock.Any(), "cookie").Return(&auth.User{ID: 1}, nil)
package mocks

// Generate mocks for every port in internal/ports:
// AuthSnapshotStore, AuthStatusSource, QueryPort, ScrollPort, SummitsAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ports_mock.go github.com/summitlog/summits-web/internal/ports AuthSnapshotStore,AuthStatusSource,QueryPort,ScrollPort,SummitsAPI
