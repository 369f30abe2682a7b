// Package proto holds the service definitions. Generated Go code lands under
// gen/ next to the ent client.
package proto

//go:generate protoc --go_out=../gen --go_opt=module=github.com/facturascan/pipeline/gen --go-grpc_out=../gen --go-grpc_opt=module=github.com/facturascan/pipeline/gen facturas/v1/facturas.proto
