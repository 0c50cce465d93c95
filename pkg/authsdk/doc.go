/*
Package authsdk provides a client SDK for the Pahiram authentication service,
plus the request and response types the service itself writes.

# Overview

Pahiram does not own credentials. A login is forwarded to APCIS and, when
APCIS accepts it, Pahiram issues its own session token that expires together
with the APCIS token.

	client := authsdk.NewSDKClient("https://pahiram.example.com")

	session, resp, err := client.AuthenticateWithPassword(ctx, "2021-140123", password)
	if err != nil {
		var apiErr *authsdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			// apiErr.Body is the APCIS rejection, unchanged
		}
		return err
	}

	fmt.Println(resp.Data.User.Role)

	// Revoke this token only
	_, err = session.Logout(ctx)

	// Or revoke every token of the user
	_, err = session.LogoutAll(ctx)

# Errors

Every non-success response is returned as *APIError. Message holds the
"error" field of the failure envelope and Errors the per-field messages of a
422 validation failure.

# Server side

ErrorResponse values and WriteValidationError produce the same envelopes the
client parses, so handlers and clients share one definition of the wire
format.
*/
package authsdk
