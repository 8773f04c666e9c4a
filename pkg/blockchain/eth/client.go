package eth

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

var (
	RpcTimeOut = time.Second * 5
)

// EthClient is the read-only subset of the node API used to query
// contracts.
type EthClient interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error)
	Close()
}

// Default implementation of ETH client. Since RPC nodes are often unstable,
// this client keeps a list of RPCs and falls through to the next one when a
// call fails.
type defaultEthClient struct {
	rpcs    []string
	clients []*ethclient.Client

	lock sync.Mutex
}

func NewEthClient(rpcs []string) *defaultEthClient {
	return &defaultEthClient{
		rpcs:    rpcs,
		clients: make([]*ethclient.Client, len(rpcs)),
	}
}

func (c *defaultEthClient) client(ctx context.Context, i int) (*ethclient.Client, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.clients[i] != nil {
		return c.clients[i], nil
	}

	dialCtx, cancel := context.WithTimeout(ctx, RpcTimeOut)
	defer cancel()

	client, err := ethclient.DialContext(dialCtx, c.rpcs[i])
	if err != nil {
		return nil, err
	}

	c.clients[i] = client
	return client, nil
}

func (c *defaultEthClient) CallContract(
	ctx context.Context, msg ethereum.CallMsg, block *big.Int,
) ([]byte, error) {
	if len(c.rpcs) == 0 {
		return nil, errors.New("no rpc configured")
	}

	var lastErr error
	for i, rpc := range c.rpcs {
		client, err := c.client(ctx, i)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot dial rpc %s: %v", rpc, err)
			lastErr = err
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, RpcTimeOut)
		result, err := client.CallContract(callCtx, msg, block)
		cancel()
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot call contract via %s: %v", rpc, err)
			lastErr = err
			continue
		}

		return result, nil
	}

	return nil, lastErr
}

func (c *defaultEthClient) Close() {
	c.lock.Lock()
	defer c.lock.Unlock()

	for i, client := range c.clients {
		if client != nil {
			client.Close()
			c.clients[i] = nil
		}
	}
}
