// Package agentv1 contains the generated gRPC bindings for the agent runner
// service. Run `go generate ./proto` after editing agent.proto.
package agentv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative agent.proto
