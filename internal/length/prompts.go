package length

import "fmt"

func expandPrompt(min, max int) string {
	return fmt.Sprintf("次の物件紹介文を、事実の追加や削除をせずに表現を補って%d〜%d文字に収まるよう書き直してください。{{ }}で囲まれたトークンは一切変更しないでください。", min, max)
}

func condensePrompt(min, max int) string {
	return fmt.Sprintf("次の物件紹介文を、事実を削らずに簡潔にして%d〜%d文字に収まるよう書き直してください。{{ }}で囲まれたトークンは一切変更しないでください。", min, max)
}
