package locale

// MessageKey identifies a translatable user-facing message.
type MessageKey string

const (
	MsgLoginFailed        MessageKey = "login_failed"
	MsgLoginThrottled     MessageKey = "login_throttled"
	MsgLoggedOut          MessageKey = "logged_out"
	MsgRegistered         MessageKey = "registered"
	MsgPasswordResetSent  MessageKey = "password_reset_sent"
	MsgHeistJoined        MessageKey = "heist_joined"
	MsgHeistLeft          MessageKey = "heist_left"
	MsgHeistDeleted       MessageKey = "heist_deleted"
	MsgPlaceNotFound      MessageKey = "place_not_found"
	MsgNotFound           MessageKey = "not_found"
	MsgSaved              MessageKey = "saved"
	MsgDeleted            MessageKey = "deleted"
	MsgOperationFailed    MessageKey = "operation_failed"
	MsgPreferencesUpdated MessageKey = "preferences_updated"
)

var catalog = map[Locale]map[MessageKey]string{
	EnGB: {
		MsgLoginFailed:        "Invalid username or password.",
		MsgLoginThrottled:     "Too many failed attempts. Try again later.",
		MsgLoggedOut:          "You have been logged out.",
		MsgRegistered:         "Account created. You can now log in.",
		MsgPasswordResetSent:  "If the address exists, a reset link has been sent.",
		MsgHeistJoined:        "You joined the heist.",
		MsgHeistLeft:          "You left the heist.",
		MsgHeistDeleted:       "The heist has been deleted.",
		MsgPlaceNotFound:      "This place does not exist.",
		MsgNotFound:           "The requested resource was not found.",
		MsgSaved:              "Changes saved.",
		MsgDeleted:            "Deleted.",
		MsgOperationFailed:    "The operation could not be completed.",
		MsgPreferencesUpdated: "Preferences updated.",
	},
	FrFR: {
		MsgLoginFailed:        "Identifiant ou mot de passe invalide.",
		MsgLoginThrottled:     "Trop de tentatives. Réessayez plus tard.",
		MsgLoggedOut:          "Vous avez été déconnecté.",
		MsgRegistered:         "Compte créé. Vous pouvez vous connecter.",
		MsgPasswordResetSent:  "Si l'adresse existe, un lien de réinitialisation a été envoyé.",
		MsgHeistJoined:        "Vous avez rejoint le braquage.",
		MsgHeistLeft:          "Vous avez quitté le braquage.",
		MsgHeistDeleted:       "Le braquage a été supprimé.",
		MsgPlaceNotFound:      "Ce lieu n'existe pas.",
		MsgNotFound:           "La ressource demandée est introuvable.",
		MsgSaved:              "Modifications enregistrées.",
		MsgDeleted:            "Supprimé.",
		MsgOperationFailed:    "L'opération n'a pas pu aboutir.",
		MsgPreferencesUpdated: "Préférences mises à jour.",
	},
}

// T translates key for the given locale, falling back to the default locale
// and finally to the raw key so a missing entry is visible, not fatal.
func T(l Locale, key MessageKey) string {
	if msgs, ok := catalog[l]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog[Default()][key]; ok {
		return msg
	}
	return string(key)
}
