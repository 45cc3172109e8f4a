// Package content holds the static company directory: leadership team, the
// insurance underwriter, and the hospital partner network. The CLI prints it;
// nothing here is fetched remotely.
package content

// TeamMember is one entry in the leadership directory.
type TeamMember struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Image string `json:"image"`
	Quote string `json:"quote,omitempty"`
}

var teamMembers = []TeamMember{
	{
		Name:  "Lion Muhammad Main Uddin",
		Image: "https://placehold.co/400x400/E0E7FF/4338CA?text=LM",
		Title: "CEO & Founder",
		Quote: "Healthcare is a right, not a privilege. We're building bridges to ensure every family has access to quality care and a brighter life.",
	},
	{
		Name:  "S Abdul Motin",
		Image: "https://placehold.co/400x400/E0E7FF/4338CA?text=SM",
		Title: "Advisor",
		Quote: "Excellence in operations means excellence in care. Every process we optimize brings us closer to serving our members better.",
	},
	{
		Name:  "Md Ahosan Ullah",
		Image: "https://placehold.co/400x400/E0E7FF/4338CA?text=MA",
		Title: "Manager (Hr,Admin)",
		Quote: "Our story is written by the lives we touch. Marketing isn't just about visibility—it's about connecting hearts with hope.",
	},
	{
		Name:  "Member Four",
		Image: "https://placehold.co/400x400/E0E7FF/4338CA?text=M4",
		Title: "Lead Developer",
		Quote: "Technology should be invisible, but its impact should be undeniable. We code with compassion and innovate with purpose.",
	},
	{
		Name:  "Member Five",
		Image: "https://placehold.co/400x400/E0E7FF/4338CA?text=M5",
		Title: "Chief Medical Officer",
		Quote: "Every decision we make should pass through the lens of compassion. Healthcare excellence begins with understanding our members' needs.",
	},
	{
		Name:  "Member Six",
		Image: "https://placehold.co/400x400/E0E7FF/4338CA?text=M6",
		Title: "Chief Financial Officer",
		Quote: "Financial responsibility means ensuring every taka spent brings maximum value to our members' health and wellbeing.",
	},
	{
		Name:  "Member Seven",
		Image: "https://placehold.co/400x400/E0E7FF/4338CA?text=M7",
		Title: "Director of Operations",
		Quote: "Seamless operations create seamless care. Behind every successful treatment is a well-coordinated team working in harmony.",
	},
	{
		Name:  "Member Eight",
		Image: "https://placehold.co/400x400/E0E7FF/4338CA?text=M8",
		Title: "Head of Customer Relations",
		Quote: "Every voice matters, every concern deserves attention. We listen not just to respond, but to truly understand and serve better.",
	},
}

// TeamMembers returns the leadership directory in display order.
func TeamMembers() []TeamMember {
	out := make([]TeamMember, len(teamMembers))
	copy(out, teamMembers)
	return out
}
