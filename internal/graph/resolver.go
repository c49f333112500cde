package graph

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/repository"
	"go.uber.org/zap"
)

type resolver struct {
	users repository.Users
	txns  repository.Transactions
	log   *zap.Logger
}

type logoutResponse struct {
	Message string `json:"message"`
}

func inputArg(p graphql.ResolveParams) map[string]interface{} {
	input, _ := p.Args["input"].(map[string]interface{})
	return input
}

func (r *resolver) signUp(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p)
	username, _ := input["username"].(string)
	name, _ := input["name"].(string)
	password, _ := input["password"].(string)
	gender, _ := input["gender"].(model.Gender)

	if username == "" || name == "" || password == "" || !gender.Valid() {
		return nil, errAllFieldsRequired
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, r.clientError("signUp", err)
	}

	user := model.NewUser(username, name, hash, gender)
	if err := r.users.CreateUser(p.Context, user); err != nil {
		return nil, r.clientError("signUp", err)
	}

	if err := auth.For(p.Context).Login(p.Context, user); err != nil {
		return nil, r.clientError("signUp", err)
	}

	return user, nil
}

func (r *resolver) login(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p)
	username, _ := input["username"].(string)
	password, _ := input["password"].(string)

	if username == "" || password == "" {
		return nil, errAllFieldsRequired
	}

	authCtx := auth.For(p.Context)
	user, err := authCtx.Authenticate(p.Context, username, password)
	if err != nil {
		return nil, r.clientError("login", err)
	}

	if err := authCtx.Login(p.Context, user); err != nil {
		return nil, r.clientError("login", err)
	}

	return user, nil
}

func (r *resolver) logout(p graphql.ResolveParams) (interface{}, error) {
	if err := auth.For(p.Context).Logout(p.Context); err != nil {
		return nil, r.clientError("logout", err)
	}
	return &logoutResponse{Message: "Logged Out Successfully"}, nil
}

func (r *resolver) authUser(p graphql.ResolveParams) (interface{}, error) {
	user, err := auth.For(p.Context).GetUser(p.Context)
	if err != nil {
		return nil, r.clientError("authUser", err)
	}
	if user == nil {
		return nil, nil
	}
	return user, nil
}

func (r *resolver) user(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["userId"].(string)

	user, err := r.users.UserByID(p.Context, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.clientError("user", err)
	}
	return user, nil
}

// userTransactions resolves User.transactions.
func (r *resolver) userTransactions(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*model.User)
	if !ok {
		return nil, nil
	}
	txns, err := r.txns.TransactionsByUser(p.Context, user.ID)
	if err != nil {
		return nil, r.clientError("User.transactions", err)
	}
	return txns, nil
}
