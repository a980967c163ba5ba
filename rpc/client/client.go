package client

import (
	"encoding/json"
	"fmt"

	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-rpc/rpc"
)

// ClientInterface is the interface that defines the implementation of all the endpoints
type ClientInterface interface {
	BridgeClientInterface
}

// ClientFactoryInterface interface for the client factory
type ClientFactoryInterface interface {
	NewClient(url string) ClientInterface
}

// ClientFactory is the implementation of the bridge client factory
type ClientFactory struct{}

// NewClient returns an implementation of the bridge node client
func (f *ClientFactory) NewClient(url string) ClientInterface {
	return NewClient(url)
}

// Client wraps all the available endpoints of the bridge node server
type Client struct {
	url string
}

// NewClient returns a client ready to be used
func NewClient(url string) *Client {
	return &Client{
		url: url,
	}
}

func call[T any](url, method string, parameters ...interface{}) (T, error) {
	var result T
	response, err := rpc.JSONRPCCall(url, method, parameters...)
	if err != nil {
		return result, err
	}
	if response.Error != nil {
		if response.Error.Code == rpc.NotFoundErrorCode {
			return result, fmt.Errorf("%w: %v", db.ErrNotFound, response.Error.Message)
		}
		return result, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	return result, json.Unmarshal(response.Result, &result)
}
