package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/auth-gateway/models"
	"google.golang.org/grpc"
)

type userClient struct {
	conn    grpc.ClientConnInterface
	timeout time.Duration
}

// NewUserClient returns a UserClient calling the user service over conn.
// Every call is bounded by timeout.
func NewUserClient(conn grpc.ClientConnInterface, timeout time.Duration) UserClient {
	return &userClient{conn: conn, timeout: timeout}
}

func (c *userClient) LookupUserByEmail(ctx context.Context, email string) (models.BackendUser, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &loginUserRequest{Email: email}
	resp := &loginUserResponse{}
	if err := c.conn.Invoke(ctx, methodLoginUser, req, resp); err != nil {
		return models.BackendUser{}, mapRPCError(methodLoginUser, err)
	}

	return models.BackendUser{
		UserID:         resp.UserID,
		Email:          resp.Email,
		UserName:       resp.UserName,
		HashedPassword: resp.Password,
	}, nil
}

func (c *userClient) CreateUser(ctx context.Context, user models.NewUser) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &registerUserRequest{
		FullName:     user.FullName,
		UserName:     user.UserName,
		EmailAddress: user.EmailAddress,
		PhoneNumber:  user.PhoneNumber,
		Password:     user.HashedPassword,
	}
	resp := &registerUserResponse{}
	if err := c.conn.Invoke(ctx, methodRegisterUser, req, resp); err != nil {
		return "", mapRPCError(methodRegisterUser, err)
	}

	return resp.UserName, nil
}
