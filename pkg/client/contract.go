package client

// Contract represents a smart contract, a named group of transaction
// functions, implemented by a chaincode deployed to a channel.
type Contract struct {
	network       *Network
	chaincodeName string
	name          string
}

func newContract(network *Network, chaincodeName, name string) *Contract {
	return &Contract{network: network, chaincodeName: chaincodeName, name: name}
}

// ChaincodeName returns the chaincode hosting this contract.
func (c *Contract) ChaincodeName() string {
	return c.chaincodeName
}

// Name returns the contract's name within its chaincode, empty for the
// default contract.
func (c *Contract) Name() string {
	return c.name
}

// NewProposal begins building a proposal invoking transactionName with the
// supplied byte arguments. Call WithTransient/WithEndorsingOrganizations on
// the returned builder as needed, then Build to obtain the Proposal.
func (c *Contract) NewProposal(transactionName string, arguments ...[]byte) *ProposalBuilder {
	return newProposalBuilder(c, transactionName, arguments...)
}

// TransactionOption configures a proposal built by one of the Contract
// convenience methods (Submit, SubmitAsync).
type TransactionOption func(*ProposalBuilder)

// WithArguments supplies the string arguments passed to the transaction
// function invoked by Contract.Submit or Contract.SubmitAsync.
func WithArguments(args ...string) TransactionOption {
	arguments := stringArgsToBytes(args)
	return func(b *ProposalBuilder) {
		b.WithArguments(arguments...)
	}
}

// WithTransient attaches private transient data to the proposal built by a
// Contract convenience method.
func WithTransient(transient map[string][]byte) TransactionOption {
	return func(b *ProposalBuilder) {
		b.WithTransient(transient)
	}
}

// WithEndorsingOrganizations restricts endorsement, for the proposal built
// by a Contract convenience method, to peers of the named organizations.
func WithEndorsingOrganizations(organizations ...string) TransactionOption {
	return func(b *ProposalBuilder) {
		b.WithEndorsingOrganizations(organizations...)
	}
}

func stringArgsToBytes(args []string) [][]byte {
	arguments := make([][]byte, len(args))
	for i, arg := range args {
		arguments[i] = []byte(arg)
	}
	return arguments
}

func (c *Contract) buildProposal(transactionName string, opts []TransactionOption) (*Proposal, error) {
	builder := c.NewProposal(transactionName)
	for _, opt := range opts {
		opt(builder)
	}
	return builder.Build()
}

// EvaluateTransaction evaluates transactionName with the given string
// arguments and returns its result, without submitting anything to the
// ordering service.
func (c *Contract) EvaluateTransaction(transactionName string, args ...string) ([]byte, error) {
	proposal, err := c.buildProposal(transactionName, []TransactionOption{WithArguments(args...)})
	if err != nil {
		return nil, err
	}
	return proposal.Evaluate()
}

// SubmitTransaction endorses, submits and waits for the commit status of
// transactionName with the given string arguments. It returns CommitError
// if the transaction committed with a non-VALID status.
func (c *Contract) SubmitTransaction(transactionName string, args ...string) ([]byte, error) {
	return c.Submit(transactionName, WithArguments(args...))
}

// Submit is the general-purpose synchronous convenience: endorse, submit
// and wait for commit status, configuring the underlying proposal with
// opts (WithArguments, WithTransient, WithEndorsingOrganizations).
func (c *Contract) Submit(transactionName string, opts ...TransactionOption) ([]byte, error) {
	result, commit, err := c.SubmitAsync(transactionName, opts...)
	if err != nil {
		return nil, err
	}

	status, err := commit.Status()
	if err != nil {
		return nil, err
	}
	if !status.Successful {
		return nil, newCommitError(commit.TransactionID(), status.Code)
	}

	return result, nil
}

// SubmitAsync endorses and submits transactionName, returning its result
// and a Commit immediately, without waiting for the transaction to commit.
func (c *Contract) SubmitAsync(transactionName string, opts ...TransactionOption) ([]byte, *Commit, error) {
	proposal, err := c.buildProposal(transactionName, opts)
	if err != nil {
		return nil, nil, err
	}

	transaction, err := proposal.Endorse()
	if err != nil {
		return nil, nil, err
	}

	commit, err := transaction.Submit()
	if err != nil {
		return nil, nil, err
	}

	return transaction.Result(), commit, nil
}
