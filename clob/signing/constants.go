package signing

const (
	// OrderDomainName is the EIP-712 domain name used for order signatures.
	OrderDomainName = "Polymarket CTF Exchange"

	// AuthDomainName is the EIP-712 domain name used for API-key issuance.
	AuthDomainName = "ClobAuthDomain"

	// DomainVersion applies to both domains.
	DomainVersion = "1"

	// AttestationMessage is the fixed prefix of the CLOB auth challenge.
	AttestationMessage = "This message attests that I control the given wallet"

	// ZeroAddress is the verifying contract of the auth domain and the taker
	// of public orders.
	ZeroAddress = "0x0000000000000000000000000000000000000000"
)
