package adapter

import (
	"errors"

	"github.com/MKhiriev/auth-gateway/internal/config"
	"github.com/MKhiriev/auth-gateway/internal/logger"
	"github.com/MKhiriev/auth-gateway/internal/metrics"
	"google.golang.org/grpc"
)

// Clients aggregates the backend clients and owns their connections.
type Clients struct {
	User    UserClient
	Product ProductClient

	conns  []*grpc.ClientConn
	logger *logger.Logger
}

// NewClients creates one connection per backend described by cfg. Nothing
// is dialed until the first call. opts are applied to both connections.
func NewClients(cfg config.Adapter, m *metrics.Metrics, logger *logger.Logger, opts ...grpc.DialOption) (*Clients, error) {
	userConn, err := newClientConn(cfg.UserServiceAddress, m, opts...)
	if err != nil {
		return nil, err
	}

	productConn, err := newClientConn(cfg.ProductServiceAddress, m, opts...)
	if err != nil {
		_ = userConn.Close()
		return nil, err
	}

	logger.Info().
		Str("user_service", cfg.UserServiceAddress).
		Str("product_service", cfg.ProductServiceAddress).
		Dur("request_timeout", cfg.RequestTimeout).
		Msg("backend clients created")

	return &Clients{
		User:    NewUserClient(userConn, cfg.RequestTimeout),
		Product: NewProductClient(productConn, cfg.RequestTimeout),
		conns:   []*grpc.ClientConn{userConn, productConn},
		logger:  logger,
	}, nil
}

// Close closes every backend connection.
func (c *Clients) Close() error {
	var errs []error
	for _, conn := range c.conns {
		if err := conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		c.logger.Err(err).Msg("error closing backend connections")
		return err
	}

	c.logger.Info().Msg("backend connections closed")
	return nil
}
