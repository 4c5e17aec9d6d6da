package service

import "fmt"

func verificationEmailBody(code string) string {
	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; line-height: 1.5;">
      <p>Dear User,</p>
      <p>Your verification code is:</p>
      <div style="color: green; font-size: 20px; font-weight: bold; text-align: center">%s</div>
      <p>This code will expire in 10 minutes.</p>
      </div>
      `, code)
}

func resendEmailBody(code string) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; line-height: 1.5;">
      <p>Dear User,</p>
      <p>Your new verification code is:</p>
      <div style="color: pink; font-size: 20px; font-weight: bold; text-align: center">%s</div>
      <p>This code will expire in 10 minutes.</p>
    </div>
  `, code)
}

func resetEmailBody(resetURL string) string {
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif;">
            <p>Dear User,</p>
            <p>Click the link below to reset your password:</p>
            <a href="%s" style="color: pink; font-weight: bold;">Reset Password</a>
            <p>This link will expire in 10 minutes.</p>
        </div>
    `, resetURL)
}
