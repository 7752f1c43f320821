// Package proto holds the wire contract. Generated Go stubs land under
// gen/proto and are not committed.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative cards/v1/cards.proto
