package services

// ValidationError reports bad input or a violated business rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports an id that does not resolve to a record.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// AuthenticationError reports missing or invalid credentials or token.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// AuthorizationError reports an authenticated caller attempting a forbidden operation.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// User-facing messages.
const (
	MsgAmountMustBePositive   = "El monto debe ser mayor a 0"
	MsgDescriptionRequired    = "La descripción es requerida"
	MsgDescriptionTooShort    = "La descripción debe tener al menos 3 caracteres"
	MsgSameDebtorAndCreditor  = "El deudor y el acreedor no pueden ser la misma persona"
	MsgPaidDebtNotEditable    = "No se puede modificar una deuda pagada"
	MsgDebtAlreadyPaid        = "Esta deuda ya está marcada como pagada"
	MsgPaidDebtNotRemovable   = "No se puede eliminar una deuda pagada"
	MsgDebtRelationsNotLoaded = "Error al cargar las relaciones de la deuda %s"
	MsgDebtNotFound           = "Deuda con ID %s no encontrada"
	MsgUserNotFound           = "Usuario con ID %s no encontrado"
	MsgInvalidEmail           = "El email no es válido"
	MsgEmailTaken             = "El email ya está registrado"
	MsgPasswordTooShort       = "La contraseña debe tener al menos 6 caracteres"
	MsgNameRequired           = "El nombre es requerido"
	MsgUserHasDebts           = "No se puede eliminar un usuario con deudas registradas"
	MsgInvalidCredentials     = "Credenciales inválidas"
	MsgUnauthorized           = "No autorizado"
	MsgInternalError          = "Error interno del servidor"
	MsgAmountTooLarge         = "El monto no puede superar 99999999.99"
)
