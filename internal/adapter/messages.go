package adapter

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Full method names of the backend RPCs.
const (
	methodLoginUser        = "/user.UserService/LoginUser"
	methodRegisterUser     = "/user.UserService/RegisterUser"
	methodGetAllCategories = "/product.ProductService/GetAllCategories"
)

// user.LoginUserRequest
type loginUserRequest struct {
	Email string
}

func (m *loginUserRequest) marshalWire() []byte {
	return appendString(nil, 1, m.Email)
}

func (m *loginUserRequest) unmarshalWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.Email)
		}
		return 0, nil
	})
}

// user.LoginUserResponse
type loginUserResponse struct {
	UserID   string
	Email    string
	UserName string
	Password string
}

func (m *loginUserResponse) marshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.UserID)
	b = appendString(b, 2, m.Email)
	b = appendString(b, 3, m.UserName)
	b = appendString(b, 4, m.Password)
	return b
}

func (m *loginUserResponse) unmarshalWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.UserID)
		case 2:
			return consumeString(typ, b, &m.Email)
		case 3:
			return consumeString(typ, b, &m.UserName)
		case 4:
			return consumeString(typ, b, &m.Password)
		}
		return 0, nil
	})
}

// user.RegisterUserRequest
type registerUserRequest struct {
	FullName     string
	UserName     string
	EmailAddress string
	PhoneNumber  string
	Password     string
}

func (m *registerUserRequest) marshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.FullName)
	b = appendString(b, 2, m.UserName)
	b = appendString(b, 3, m.EmailAddress)
	b = appendString(b, 4, m.PhoneNumber)
	b = appendString(b, 5, m.Password)
	return b
}

func (m *registerUserRequest) unmarshalWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.FullName)
		case 2:
			return consumeString(typ, b, &m.UserName)
		case 3:
			return consumeString(typ, b, &m.EmailAddress)
		case 4:
			return consumeString(typ, b, &m.PhoneNumber)
		case 5:
			return consumeString(typ, b, &m.Password)
		}
		return 0, nil
	})
}

// user.RegisterUserResponse
type registerUserResponse struct {
	UserName string
}

func (m *registerUserResponse) marshalWire() []byte {
	return appendString(nil, 1, m.UserName)
}

func (m *registerUserResponse) unmarshalWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.UserName)
		}
		return 0, nil
	})
}

// product.GetAllCategoriesRequest
type getAllCategoriesRequest struct{}

func (m *getAllCategoriesRequest) marshalWire() []byte {
	return nil
}

func (m *getAllCategoriesRequest) unmarshalWire(b []byte) error {
	return consumeFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) {
		return 0, nil
	})
}

// product.Category
type category struct {
	CategoryID string
	Name       string
}

func (m *category) marshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.CategoryID)
	b = appendString(b, 2, m.Name)
	return b
}

func (m *category) unmarshalWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.CategoryID)
		case 2:
			return consumeString(typ, b, &m.Name)
		}
		return 0, nil
	})
}

// product.GetAllCategoriesResponse
type getAllCategoriesResponse struct {
	Categories []*category
}

func (m *getAllCategoriesResponse) marshalWire() []byte {
	var b []byte
	for _, c := range m.Categories {
		b = appendMessage(b, 1, c)
	}
	return b
}

func (m *getAllCategoriesResponse) unmarshalWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		c := &category{}
		n, err := consumeMessage(typ, b, c)
		if err == nil && n > 0 {
			m.Categories = append(m.Categories, c)
		}
		return n, err
	})
}
