package graph

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const createTransactionMutation = `mutation ($input: CreateTransactionInput!) {
	createTransaction(input: $input) { id description paymentType category amount location date }
}`

func (ts *testServer) createTransaction(t *testing.T, client *http.Client, description, paymentType, category string, amount float64) map[string]interface{} {
	t.Helper()

	resp := ts.do(t, client, createTransactionMutation, map[string]interface{}{
		"input": map[string]interface{}{
			"description": description,
			"paymentType": paymentType,
			"category":    category,
			"amount":      amount,
			"location":    "Berlin",
			"date":        "2024-05-01T00:00:00Z",
		},
	})
	require.Empty(t, resp.Errors)
	return resp.Data["createTransaction"].(map[string]interface{})
}

func Test_transactionCRUD(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	ts := newTestServer(t)
	client := ts.newClient(t)
	ts.signUp(t, client, "carol", "Carol", "secret123", "female")

	created := ts.createTransaction(t, client, "coffee", "card", "expense", 4.5)
	assert.Equal("coffee", created["description"])
	assert.Equal("card", created["paymentType"])
	assert.Equal("expense", created["category"])
	assert.Equal(4.5, created["amount"])

	ts.createTransaction(t, client, "rent", "cash", "expense", 1200)
	ts.createTransaction(t, client, "etf", "card", "investment", 300)

	resp := ts.do(t, client, `{ transactions { id description } }`, nil)
	require.Empty(resp.Errors)
	assert.Len(resp.Data["transactions"].([]interface{}), 3)

	// single lookup
	resp = ts.do(t, client, `query ($id: ID!) { transaction(transactionId: $id) { description user { username } } }`,
		map[string]interface{}{"id": created["id"]})
	require.Empty(resp.Errors)
	txn := resp.Data["transaction"].(map[string]interface{})
	assert.Equal("coffee", txn["description"])
	assert.Equal("carol", txn["user"].(map[string]interface{})["username"])

	// update
	resp = ts.do(t, client, `mutation ($input: UpdateTransactionInput!) {
		updateTransaction(input: $input) { id description amount }
	}`, map[string]interface{}{
		"input": map[string]interface{}{
			"transactionId": created["id"],
			"description":   "espresso",
			"amount":        5.0,
		},
	})
	require.Empty(resp.Errors)
	updated := resp.Data["updateTransaction"].(map[string]interface{})
	assert.Equal("espresso", updated["description"])
	assert.Equal(5.0, updated["amount"])

	// delete returns the removed record
	resp = ts.do(t, client, `mutation ($id: ID!) { deleteTransaction(transactionId: $id) { id } }`,
		map[string]interface{}{"id": created["id"]})
	require.Empty(resp.Errors)

	resp = ts.do(t, client, `{ transactions { id } }`, nil)
	require.Empty(resp.Errors)
	assert.Len(resp.Data["transactions"].([]interface{}), 2)
}

func Test_transactionsRequireAuth(t *testing.T) {
	assert := assert.New(t)

	ts := newTestServer(t)
	anon := ts.newClient(t)

	resp := ts.do(t, anon, `{ transactions { id } }`, nil)
	assert.Len(resp.Errors, 1)
	assert.Equal("Unauthorized", resp.Errors[0].Message)

	resp = ts.do(t, anon, createTransactionMutation, map[string]interface{}{
		"input": map[string]interface{}{
			"description": "coffee",
			"paymentType": "card",
			"category":    "expense",
			"amount":      4.5,
			"date":        "2024-05-01T00:00:00Z",
		},
	})
	assert.Len(resp.Errors, 1)
	assert.Equal("Unauthorized", resp.Errors[0].Message)
}

func Test_transactionOwnership(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	ts := newTestServer(t)

	carol := ts.newClient(t)
	ts.signUp(t, carol, "carol", "Carol", "secret123", "female")
	created := ts.createTransaction(t, carol, "coffee", "card", "expense", 4.5)

	dave := ts.newClient(t)
	ts.signUp(t, dave, "dave", "Dave", "secret456", "male")

	// dave sees none of carol's records in his list
	resp := ts.do(t, dave, `{ transactions { id } }`, nil)
	require.Empty(resp.Errors)
	assert.Empty(resp.Data["transactions"])

	// and cannot update or delete them
	resp = ts.do(t, dave, `mutation ($input: UpdateTransactionInput!) {
		updateTransaction(input: $input) { id }
	}`, map[string]interface{}{
		"input": map[string]interface{}{
			"transactionId": created["id"],
			"description":   "hijacked",
		},
	})
	require.Len(resp.Errors, 1)
	assert.Equal("Transaction not found", resp.Errors[0].Message)

	resp = ts.do(t, dave, `mutation ($id: ID!) { deleteTransaction(transactionId: $id) { id } }`,
		map[string]interface{}{"id": created["id"]})
	require.Len(resp.Errors, 1)
	assert.Equal("Transaction not found", resp.Errors[0].Message)
}

func Test_categoryStatistics(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	ts := newTestServer(t)
	client := ts.newClient(t)
	ts.signUp(t, client, "carol", "Carol", "secret123", "female")

	ts.createTransaction(t, client, "coffee", "card", "expense", 100)
	ts.createTransaction(t, client, "rent", "cash", "expense", 25)
	ts.createTransaction(t, client, "savings", "card", "saving", 50)

	resp := ts.do(t, client, `{ categoryStatistics { category totalAmount } }`, nil)
	require.Empty(resp.Errors)

	totals := map[string]float64{}
	for _, raw := range resp.Data["categoryStatistics"].([]interface{}) {
		stat := raw.(map[string]interface{})
		totals[stat["category"].(string)] = stat["totalAmount"].(float64)
	}

	assert.Equal(map[string]float64{
		"expense": 125,
		"saving":  50,
	}, totals)
}

func Test_userTransactionsRelation(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	ts := newTestServer(t)
	client := ts.newClient(t)
	ts.signUp(t, client, "carol", "Carol", "secret123", "female")
	ts.createTransaction(t, client, "coffee", "card", "expense", 4.5)

	resp := ts.do(t, client, `{ authUser { username transactions { description } } }`, nil)
	require.Empty(resp.Errors)

	authUser := resp.Data["authUser"].(map[string]interface{})
	txns := authUser["transactions"].([]interface{})
	require.Len(txns, 1)
	assert.Equal("coffee", txns[0].(map[string]interface{})["description"])
}
