// Package email delivers sign-in links.
//
// SignInSender implements signin.EmailSender. It signs a short-lived token
// carrying the address, the provider id and a random nonce, embeds it in a
// link to <base>/callback/<provider id>, renders the HTML body as a templ
// component and hands the message to a Mailer:
//
//	mailer, err := email.NewPostmarkMailer(cfg)
//	sender, err := email.NewSignInSender(mailer, signInCfg)
//	svc := signin.NewService(signinCfg, signin.WithEmailSender(sender))
//
// The callback endpoint validates the link with VerifySignInToken.
//
// Two Mailers are provided: PostmarkMailer for production and DevMailer,
// which writes every message to a directory as .html and .json files.
package email
