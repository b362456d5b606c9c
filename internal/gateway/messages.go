package gateway

// User-facing messages. The backend serves a Brazilian operator base; every
// message here is display-ready and replaces raw transport detail.
const (
	msgLoginFallback      = "Não foi possível entrar. Verifique suas credenciais."
	msgBadRequestPrefix   = "Requisição inválida: "
	msgUnauthorized       = "Não autorizado."
	msgServerError        = "Erro no servidor. Tente novamente mais tarde."
	msgNoResponse         = "Sem resposta do servidor. Verifique sua conexão."
	msgUnknown            = "Erro desconhecido. Tente novamente."
	msgReauthenticate     = "Sessão expirada. Entre novamente."
	msgSellerSignupFailed = "Não foi possível cadastrar o seller."
)
