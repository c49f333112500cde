package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/spendwise/spendwise/internal/model"
)

func newSchema(r *resolver) (graphql.Schema, error) {
	genderEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "Gender",
		Values: graphql.EnumValueConfigMap{
			"male":   &graphql.EnumValueConfig{Value: model.GenderMale},
			"female": &graphql.EnumValueConfig{Value: model.GenderFemale},
			"other":  &graphql.EnumValueConfig{Value: model.GenderOther},
		},
	})

	paymentTypeEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "PaymentType",
		Values: graphql.EnumValueConfigMap{
			"cash": &graphql.EnumValueConfig{Value: model.PaymentCash},
			"card": &graphql.EnumValueConfig{Value: model.PaymentCard},
		},
	})

	categoryEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "Category",
		Values: graphql.EnumValueConfigMap{
			"saving":     &graphql.EnumValueConfig{Value: model.CategorySaving},
			"expense":    &graphql.EnumValueConfig{Value: model.CategoryExpense},
			"investment": &graphql.EnumValueConfig{Value: model.CategoryInvestment},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"username":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"name":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"gender":         &graphql.Field{Type: graphql.NewNonNull(genderEnum)},
			"profilePicture": &graphql.Field{Type: graphql.String},
		},
	})

	transactionType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Transaction",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"userId":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"paymentType": &graphql.Field{Type: graphql.NewNonNull(paymentTypeEnum)},
			"category":    &graphql.Field{Type: graphql.NewNonNull(categoryEnum)},
			"amount":      &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"location":    &graphql.Field{Type: graphql.String},
			"date":        &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	// user <-> transaction relation fields are added after both types exist
	userType.AddFieldConfig("transactions", &graphql.Field{
		Type:    graphql.NewList(graphql.NewNonNull(transactionType)),
		Resolve: r.userTransactions,
	})
	transactionType.AddFieldConfig("user", &graphql.Field{
		Type:    userType,
		Resolve: r.transactionUser,
	})

	categoryStatisticsType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CategoryStatistics",
		Fields: graphql.Fields{
			"category":    &graphql.Field{Type: graphql.NewNonNull(categoryEnum)},
			"totalAmount": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	logoutResponseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "LogoutResponse",
		Fields: graphql.Fields{
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	signUpInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SignUpInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"name":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"gender":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(genderEnum)},
		},
	})

	loginInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LoginInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	createTransactionInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateTransactionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"description": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"paymentType": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(paymentTypeEnum)},
			"category":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(categoryEnum)},
			"amount":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"location":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"date":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	updateTransactionInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateTransactionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"transactionId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"description":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"paymentType":   &graphql.InputObjectFieldConfig{Type: paymentTypeEnum},
			"category":      &graphql.InputObjectFieldConfig{Type: categoryEnum},
			"amount":        &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"location":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"date":          &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"authUser": &graphql.Field{
				Type:    userType,
				Resolve: r.authUser,
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.user,
			},
			"transaction": &graphql.Field{
				Type: transactionType,
				Args: graphql.FieldConfigArgument{
					"transactionId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.transaction,
			},
			"transactions": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(transactionType)),
				Resolve: r.transactions,
			},
			"categoryStatistics": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(categoryStatisticsType)),
				Resolve: r.categoryStatistics,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signUp": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signUpInput)},
				},
				Resolve: r.signUp,
			},
			"login": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInput)},
				},
				Resolve: r.login,
			},
			"logout": &graphql.Field{
				Type:    logoutResponseType,
				Resolve: r.logout,
			},
			"createTransaction": &graphql.Field{
				Type: transactionType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTransactionInput)},
				},
				Resolve: r.createTransaction,
			},
			"updateTransaction": &graphql.Field{
				Type: transactionType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTransactionInput)},
				},
				Resolve: r.updateTransaction,
			},
			"deleteTransaction": &graphql.Field{
				Type: transactionType,
				Args: graphql.FieldConfigArgument{
					"transactionId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deleteTransaction,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
