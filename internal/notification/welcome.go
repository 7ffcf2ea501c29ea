package notification

import "fmt"

const welcomeEmailSubject = "Your Career Summit Check-In Credentials"

func welcomeEmailBody(msg WelcomeEmail) string {
	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your registration for %s has been received.\n\n"+
			"Check-in PIN: %s\n"+
			"Ticket number: %s\n\n"+
			"Event date: %s\n"+
			"Venue: %s\n\n"+
			"Present your PIN or ticket number at the registration desk. Your PIN "+
			"expires 24 hours after issue; you can regenerate it from your profile.\n",
		msg.Name, msg.Event.Name, msg.Pin, msg.TicketNumber, msg.Event.Date, msg.Event.Venue,
	)
}

func welcomeSMSBody(msg WelcomeSMS) string {
	return fmt.Sprintf(
		"Hi %s, your check-in PIN is %s and your ticket number is %s. Keep them private.",
		msg.Name, msg.Pin, msg.TicketNumber,
	)
}
