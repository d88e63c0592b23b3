package pets

// ValidRFID es la única validación de formato de RFID del sistema:
// exactamente 5 dígitos. La usan el service boundary y cualquier
// cliente, siempre antes de tocar el store.
func ValidRFID(code string) bool {
	if len(code) != 5 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
