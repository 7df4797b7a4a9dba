//go:generate mockgen -source=../order_api.go          -destination=./mock_order_api.go          -package=mocks
//go:generate mockgen -source=../catalog_api.go        -destination=./mock_catalog_api.go        -package=mocks
//go:generate mockgen -source=../order_state.go        -destination=./mock_order_state.go        -package=mocks
//go:generate mockgen -source=../snapshot_validator.go -destination=./mock_snapshot_validator.go -package=mocks

package mocks
